package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// EnvPrefix namespaces environment overrides, e.g. TUBEFETCH_OUTPUT_DIR
const EnvPrefix = "TUBEFETCH"

// Flag names, also used as viper keys
const (
	flagOutputDir = "output-dir"
	flagYTDLP     = "ytdlp"
	flagFFmpeg    = "ffmpeg"
	flagInstall   = "install"
	flagDebug     = "debug"
)

// Version is set during build via -ldflags "-X github.com/ytget/tubefetch/cmd.Version=X.Y.Z"
var Version = "dev"

// options are the resolved process flags
type options struct {
	outputDir string
	ytdlpPath string
	ffmpeg    string
	install   bool
	debug     bool
}

// newRootCmd builds the command. run receives the merged flag and
// environment values.
func newRootCmd(run func(ctx context.Context, opts options) error) *cobra.Command {
	v := viper.New()

	rootCmd := &cobra.Command{
		Use:           "tubefetch",
		Short:         "tubefetch is a desktop YouTube video and audio downloader",
		Version:       Version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), loadOptions(v))
		},
	}

	rootCmd.Flags().StringP(flagOutputDir, "o", "", "Download directory for this session (overrides the saved setting)")
	rootCmd.Flags().String(flagYTDLP, "", "Path to the yt-dlp executable (default: search PATH)")
	rootCmd.Flags().String(flagFFmpeg, "", "Path to the ffmpeg executable (default: search PATH)")

	// flags without shorthand
	rootCmd.Flags().Bool(flagInstall, false, "Download a managed yt-dlp build before starting")
	rootCmd.Flags().Bool(flagDebug, false, "Enable debug logging")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(rootCmd.Flags()); err != nil {
		panic(fmt.Sprintf("failed to bind flags: %v", err))
	}

	return rootCmd
}

func loadOptions(v *viper.Viper) options {
	return options{
		outputDir: strings.TrimSpace(v.GetString(flagOutputDir)),
		ytdlpPath: strings.TrimSpace(v.GetString(flagYTDLP)),
		ffmpeg:    strings.TrimSpace(v.GetString(flagFFmpeg)),
		install:   v.GetBool(flagInstall),
		debug:     v.GetBool(flagDebug),
	}
}

// Execute runs the root command
func Execute() {
	if err := newRootCmd(runApp).ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
