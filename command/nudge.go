package command

import (
	"context"
	"fmt"
	"os"

	"github.com/frantjc/nudge"
	"github.com/frantjc/nudge/android"
	"github.com/frantjc/nudge/gradle"
	"github.com/frantjc/nudge/internal/nudgeblob"
	"github.com/frantjc/nudge/internal/nudgeregexp"
	"github.com/frantjc/nudge/settings"
	"github.com/spf13/cobra"
	"gocloud.dev/blob"
	"gopkg.in/yaml.v3"
)

type postProcessFlags struct {
	productName         string
	settingsName        string
	iconsURL            string
	iconsPrefix         string
	dependencies        []string
	useCustomActivity   bool
	customActivity      string
	rescheduleOnRestart bool
}

func (f *postProcessFlags) settings(cmd *cobra.Command) (settings.Settings, error) {
	if f.settingsName != "" && !nudgeregexp.IsSettingsFile(f.settingsName) {
		return nil, fmt.Errorf("unsupported settings file %s", f.settingsName)
	}

	s, err := settings.Load(cmd.Context(), f.settingsName)
	if err != nil {
		return nil, err
	}

	if changed(cmd, "use-custom-activity") {
		s = s.Set(settings.KeyUseCustomActivity, settings.Bool(f.useCustomActivity))
	}

	if changed(cmd, "custom-activity") {
		s = s.Set(settings.KeyCustomActivity, settings.String(f.customActivity))
	}

	if changed(cmd, "reschedule-on-restart") {
		s = s.Set(settings.KeyRescheduleOnDeviceRestart, settings.Bool(f.rescheduleOnRestart))
	}

	return s, nil
}

func (f *postProcessFlags) resources(ctx context.Context) (map[string][]byte, error) {
	if f.iconsURL == "" {
		return nil, nil
	}

	log := nudge.LoggerFrom(ctx)

	log.Info("opening bucket " + f.iconsURL)
	bucket, err := blob.OpenBucket(ctx, f.iconsURL)
	if err != nil {
		return nil, err
	}
	defer bucket.Close()

	return nudgeblob.ReadIcons(ctx, bucket, f.iconsPrefix)
}

func changed(cmd *cobra.Command, name string) bool {
	flag := cmd.Flag(name)
	return flag != nil && flag.Changed
}

// NewNudge returns the root command for
// nudge which acts as its CLI entrypoint.
func NewNudge() *cobra.Command {
	var (
		f   = &postProcessFlags{}
		cmd = &cobra.Command{
			Use:   "nudge PROJECT_PATH",
			Short: "Wire notifications into an exported Android Gradle project",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				ctx := cmd.Context()

				s, err := f.settings(cmd)
				if err != nil {
					return err
				}

				resources, err := f.resources(ctx)
				if err != nil {
					return err
				}

				return nudge.PostProcess(ctx, args[0], &nudge.PostProcessOpts{
					ProductName:  f.productName,
					Dependencies: f.dependencies,
					Resources:    resources,
					Settings:     s,
				})
			},
		}
	)

	cmd.PersistentFlags().StringVar(&f.productName, "product-name", "", "product name of the Android module if PROJECT_PATH is its parent")
	cmd.PersistentFlags().StringVar(&f.settingsName, "settings", "", "settings file (.yml, .yaml, .json, .plist or .hcl)")
	cmd.PersistentFlags().StringVar(&f.iconsURL, "icons", "", "bucket URL to copy icon resources from")
	cmd.PersistentFlags().StringVar(&f.iconsPrefix, "icons-prefix", "", "key prefix of icon resources within the --icons bucket")
	cmd.PersistentFlags().StringArrayVar(&f.dependencies, "dependency", []string{gradle.DefaultDependency}, "dependency declaration to insert into build.gradle")
	cmd.PersistentFlags().BoolVar(&f.useCustomActivity, "use-custom-activity", false, "open a custom activity from notifications")
	cmd.PersistentFlags().StringVar(&f.customActivity, "custom-activity", "", "class name of the custom activity")
	cmd.PersistentFlags().BoolVar(&f.rescheduleOnRestart, "reschedule-on-restart", false, "reschedule notifications when the device restarts")

	cmd.AddCommand(
		newGradle(f),
		newRes(f),
		newManifest(f),
		newInspect(),
	)

	return SetCommon(cmd, nudge.SemVer())
}

func newGradle(f *postProcessFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "gradle PROJECT_PATH",
		Short: "Insert dependencies into build.gradle",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return gradle.InjectDependencies(cmd.Context(), args[0], f.dependencies...)
		},
	}
}

func newRes(f *postProcessFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "res PROJECT_PATH",
		Short: "Copy icon resources into src/main/res",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			resources, err := f.resources(ctx)
			if err != nil {
				return err
			}

			return android.CopyResources(ctx, android.ResolveProjectDir(args[0], f.productName), resources)
		},
	}
}

func newManifest(f *postProcessFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "manifest PROJECT_PATH",
		Short: "Merge notification receivers, permissions and metadata into AndroidManifest.xml",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := f.settings(cmd)
			if err != nil {
				return err
			}

			return android.InjectManifest(cmd.Context(), android.ResolveProjectDir(args[0], f.productName), s.Notification())
		},
	}
}

type inspection struct {
	Package     string              `yaml:"package,omitempty"`
	Permissions []string            `yaml:"permissions,omitempty"`
	Receivers   []inspectedReceiver `yaml:"receivers,omitempty"`
	Metadata    map[string]string   `yaml:"metadata,omitempty"`
}

type inspectedReceiver struct {
	Name     string   `yaml:"name"`
	Exported string   `yaml:"exported,omitempty"`
	Enabled  string   `yaml:"enabled,omitempty"`
	Actions  []string `yaml:"actions,omitempty"`
}

func newInspect() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect MANIFEST",
		Short: "Print the receivers, permissions and metadata declared by an AndroidManifest.xml",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			manifest, err := android.ParseManifest(f)
			if err != nil {
				return err
			}

			i := &inspection{
				Package:  manifest.Package(),
				Metadata: map[string]string{},
			}

			for _, permission := range manifest.UsesPermission {
				i.Permissions = append(i.Permissions, permission.Name())
			}

			for _, receiver := range manifest.Application.Receivers {
				r := inspectedReceiver{
					Name:     receiver.Name(),
					Exported: receiver.Attr("exported"),
					Enabled:  receiver.Attr("enabled"),
				}

				for _, intentFilter := range receiver.IntentFilters {
					for _, action := range intentFilter.Actions {
						r.Actions = append(r.Actions, action.Name())
					}
				}

				i.Receivers = append(i.Receivers, r)
			}

			for _, metadata := range manifest.Application.Metadata {
				i.Metadata[metadata.Name()] = metadata.Value()
			}

			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(i); err != nil {
				return err
			}

			return enc.Close()
		},
	}
}
