package nudgeregexp

func IsResourcePath(name string) bool {
	return ResourcePath.MatchString(name)
}

func IsClassName(name string) bool {
	return ClassName.MatchString(name)
}

func IsSettingsFile(name string) bool {
	return SettingsFile.MatchString(name)
}
