package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/golangdaddy/roadrash/pkg/config"
	"github.com/golangdaddy/roadrash/pkg/game"
	"github.com/golangdaddy/roadrash/pkg/log"
)

const envPrefix = "ROADRASH"

var (
	cfgFile string
	cfg     = config.Default()
)

// rootCmd starts the game when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "roadrash",
	Short: "Pseudo-3D motorbike racer: smash trash bags, dodge traffic",
	PreRunE: func(cmd *cobra.Command, args []string) error {
		if err := cfg.Validate(); err != nil {
			return err
		}
		return log.Init(cfg.LogLevel, cfg.LogFormat)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		defer log.Sync()
		return game.Run(cfg)
	},
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default is $HOME/.roadrash.yml)")

	f := rootCmd.Flags()
	f.Int64Var(&cfg.Seed, "seed", cfg.Seed,
		"seed for sprite placement (0 picks one from the clock)")
	f.StringVar(&cfg.AssetDir, "assets", cfg.AssetDir,
		"directory with background, bike and obstacles images")
	f.IntVar(&cfg.DrawDistance, "draw-distance", cfg.DrawDistance,
		"number of segments drawn ahead of the player")
	f.Float64Var(&cfg.FieldOfView, "fov", cfg.FieldOfView,
		"camera field of view in degrees")
	f.Float64Var(&cfg.CameraHeight, "camera-height", cfg.CameraHeight,
		"camera height above the road")
	f.IntVar(&cfg.Lanes, "lanes", cfg.Lanes,
		"number of lanes painted on the road")
	f.IntVar(&cfg.FPS, "fps", cfg.FPS,
		"simulation ticks per second")
	f.BoolVar(&cfg.Fullscreen, "fullscreen", cfg.Fullscreen,
		"start in fullscreen mode")
	f.BoolVar(&cfg.Mute, "mute", cfg.Mute,
		"disable sound effects")
	f.BoolVar(&cfg.Fog, "fog", cfg.Fog,
		"fade distant segments into the fog colour")
	f.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel,
		"controls the log level (debug, info, warn, error)")
	f.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat,
		"controls the log output format (text, json)")
	f.StringVar(&cfg.FogColor, "fog-color", cfg.FogColor,
		"fog colour as #RRGGBB")
	f.StringVar(&cfg.SkyColor, "sky-color", cfg.SkyColor,
		"sky colour as #RRGGBB")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".roadrash")
	}

	viper.SetEnvPrefix(envPrefix)
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}

	bindFlags(rootCmd, viper.GetViper())
}

// Bind each cobra flag to its associated viper configuration
// (config file and environment variable)
func bindFlags(cmd *cobra.Command, v *viper.Viper) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		// --draw-distance is read from ROADRASH_DRAW_DISTANCE
		if strings.Contains(f.Name, "-") {
			envVarSuffix := strings.ToUpper(strings.ReplaceAll(f.Name, "-", "_"))
			if err := v.BindEnv(f.Name,
				fmt.Sprintf("%s_%s", envPrefix, envVarSuffix)); err != nil {
				fmt.Fprintf(os.Stderr, "Could not bind env var %s: %v", f.Name, err)
			}
		}
		if !f.Changed && v.IsSet(f.Name) {
			val := v.Get(f.Name)
			if err := cmd.Flags().Set(f.Name, fmt.Sprintf("%v", val)); err != nil {
				fmt.Fprintf(os.Stderr, "Could not set flag value for %s: %v", f.Name, err)
			}
		}
	})
}
