// ==================================================================================
//
// Work of the U.S. Department of the Navy, Naval Information Warfare Center Pacific.
// Released as open source under the MIT License.  See LICENSE file.
//
// ==================================================================================

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/decksync/decksync/pkg/config"
	"github.com/decksync/decksync/pkg/lfs"
	"github.com/decksync/decksync/pkg/log"
	"github.com/decksync/decksync/pkg/sshfs"
	"github.com/decksync/decksync/pkg/sync"
	"github.com/decksync/decksync/pkg/ts"
)

const (
	DeckSyncVersion = "0.0.1"
)

// Config Flags
const (
	flagConfig      = "config"
	flagPasswordEnv = "password-env"
)

// Sync Flags
const (
	flagContinueOnError    = "continue-on-error"
	flagDryRun             = "dry-run"
	flagAtomic             = "atomic"
	flagBufferSize         = "buffer-size"
	flagTimestampPrecision = "timestamp-precision"
	flagConnectTimeout     = "connect-timeout"
)

// Log Flags
const (
	flagLogPath   = "log-path"
	flagLogFormat = "log-format"
	flagLogPerm   = "log-perm"
)

// Time Flags
const (
	flagTimeLayout = "time-layout"
	flagTimeZone   = "time-zone"
)

// Defaults
const (
	DefaultConfigPath         = "decksync.json"
	DefaultPasswordEnv        = "DECKSYNC_PASSWORD"
	DefaultTimestampPrecision = time.Second
	DefaultConnectTimeout     = 15 * time.Second
)

func initConfigFlags(flag *pflag.FlagSet) {
	flag.StringP(flagConfig, "c", DefaultConfigPath, "path to the configuration file")
	flag.String(flagPasswordEnv, DefaultPasswordEnv, "name of the environment variable holding the remote password.  If unset, the password is prompted for.")
}

func initSyncFlags(flag *pflag.FlagSet) {
	flag.Bool(flagContinueOnError, true, "continue with the next location when a location fails")
	flag.Bool(flagDryRun, false, "compute and report decisions without transferring any files")
	flag.Bool(flagAtomic, true, "write transfers to a partial sibling and rename into place on success")
	flag.Int(flagBufferSize, sync.DefaultBufferSize, "size in bytes of the transfer buffer")
	flag.Duration(flagTimestampPrecision, DefaultTimestampPrecision, "precision to use when comparing timestamps")
	flag.Duration(flagConnectTimeout, DefaultConnectTimeout, "timeout for establishing the remote session")
}

func initLogFlags(flag *pflag.FlagSet) {
	flag.String(flagLogPath, "-", "path to the log output.  Defaults to the operating system's stdout device.")
	flag.String(flagLogFormat, log.FormatText, "log format.  Either jsonl or text.")
	flag.String(flagLogPerm, "0600", "file permissions for log output file as unix file mode.")
}

func initTimeFlags(flag *pflag.FlagSet) {
	flag.StringP(flagTimeLayout, "t", "Default", "the layout to use for summary timestamps.  Use go layout format, or the name of a layout.  Use decksync layouts to show all named layouts.")
	flag.StringP(flagTimeZone, "z", "Local", "the timezone to use for summary timestamps")
}

func initSyncCommandFlags(flag *pflag.FlagSet) {
	initConfigFlags(flag)
	initSyncFlags(flag)
	initLogFlags(flag)
	initTimeFlags(flag)
}

func initViper(cmd *cobra.Command) (*viper.Viper, error) {
	v := viper.New()
	err := v.BindPFlags(cmd.Flags())
	if err != nil {
		return v, fmt.Errorf("error binding flag set to viper: %w", err)
	}
	v.SetEnvPrefix("decksync")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv() // set environment variables to overwrite config
	return v, nil
}

func checkLogConfig(v *viper.Viper) error {
	logPath := v.GetString(flagLogPath)
	if len(logPath) == 0 {
		return fmt.Errorf("log path is missing")
	}
	logPerm := v.GetString(flagLogPerm)
	if len(logPerm) == 0 {
		return fmt.Errorf("log perm is missing")
	}
	_, err := strconv.ParseUint(logPerm, 8, 32)
	if err != nil {
		return fmt.Errorf("invalid format for log perm: %s", logPerm)
	}
	return nil
}

func checkSyncConfig(v *viper.Viper) error {
	if len(v.GetString(flagConfig)) == 0 {
		return fmt.Errorf("config path is missing")
	}
	if bufferSize := v.GetInt(flagBufferSize); bufferSize <= 0 {
		return fmt.Errorf("buffer size must be greater than zero, found %d", bufferSize)
	}
	if precision := v.GetDuration(flagTimestampPrecision); precision < 0 {
		return fmt.Errorf("timestamp precision cannot be negative, found %q", precision)
	}
	if err := checkLogConfig(v); err != nil {
		return fmt.Errorf("error with log configuration: %w", err)
	}
	return nil
}

func initLogger(path string, perm string, format string) (*log.SimpleLogger, error) {

	if path == os.DevNull {
		return log.NewSimpleLoggerWithFormat(io.Discard, format), nil
	}

	if path == "-" {
		return log.NewSimpleLoggerWithFormat(os.Stdout, format), nil
	}

	fileMode := os.FileMode(0600)

	if len(perm) > 0 {
		fm, err := strconv.ParseUint(perm, 8, 32)
		if err != nil {
			return nil, fmt.Errorf("error parsing file permissions for log file from %q", perm)
		}
		fileMode = os.FileMode(fm)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, fileMode)
	if err != nil {
		return nil, fmt.Errorf("error opening log file %q: %w", path, err)
	}

	return log.NewSimpleLoggerWithFormat(f, format), nil
}

// getPassword returns the remote password from the configured environment
// variable, or prompts for it when running on a terminal.  The password is
// never persisted.
func getPassword(v *viper.Viper, user string, host string) (string, error) {
	if name := v.GetString(flagPasswordEnv); len(name) > 0 {
		if password := os.Getenv(name); len(password) > 0 {
			return password, nil
		}
	}
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return "", fmt.Errorf("no password available: environment variable is unset and stdin is not a terminal")
	}
	fmt.Fprintf(os.Stderr, "%s@%s password: ", user, host)
	password, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("error reading password: %w", err)
	}
	return string(password), nil
}

// selectLocations returns the locations named in args, in declared order, or
// all of them when args is empty.
func selectLocations(locations []sync.Location, args []string) ([]sync.Location, error) {
	if len(args) == 0 {
		return locations, nil
	}
	requested := map[string]struct{}{}
	for _, name := range args {
		requested[name] = struct{}{}
	}
	selected := []sync.Location{}
	for _, loc := range locations {
		if _, ok := requested[loc.Name]; ok {
			selected = append(selected, loc)
			delete(requested, loc.Name)
		}
	}
	if len(requested) > 0 {
		names := make([]string, 0, len(requested))
		for name := range requested {
			names = append(names, name)
		}
		sort.Strings(names)
		return nil, fmt.Errorf("unknown locations: %s", strings.Join(names, ", "))
	}
	return selected, nil
}

func printSummary(run *sync.RunSummary, layout ts.Layout, zone *time.Location) {
	for _, s := range run.Locations {
		if s.Err != nil {
			fmt.Printf("location %s: failed: %v\n", s.Location, s.Err)
			continue
		}
		fmt.Printf(
			"location %s: %d up-to-date, %d pushed, %d pulled, %d failed (finished %s)\n",
			s.Location,
			s.UpToDate,
			s.Pushed,
			s.Pulled,
			s.Failed,
			layout.Format(s.Finished.In(zone)),
		)
		for _, o := range s.FailedOutcomes() {
			fmt.Printf("  failed: %s: %v\n", o.Pair, o.Err)
		}
	}
}

func runSync(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	v, err := initViper(cmd)
	if err != nil {
		return fmt.Errorf("error initializing viper: %w", err)
	}

	if errConfig := checkSyncConfig(v); errConfig != nil {
		return errConfig
	}

	logger, err := initLogger(v.GetString(flagLogPath), v.GetString(flagLogPerm), v.GetString(flagLogFormat))
	if err != nil {
		return fmt.Errorf("error initializing logger: %w", err)
	}

	timeLayout := ts.ParseLayout(v.GetString(flagTimeLayout))
	timeZone, err := ts.ParseLocation(v.GetString(flagTimeZone))
	if err != nil {
		return fmt.Errorf("error parsing time zone location %q: %w", v.GetString(flagTimeZone), err)
	}

	c, err := config.Load(v.GetString(flagConfig))
	if err != nil {
		return err
	}
	if err := c.Validate(); err != nil {
		return fmt.Errorf("error validating config: %w", err)
	}

	locations, err := selectLocations(c.SyncLocations(), args)
	if err != nil {
		return err
	}

	password, err := getPassword(v, c.User, c.Remote)
	if err != nil {
		return err
	}

	remoteFileSystem, err := sshfs.Dial(ctx, &sshfs.DialInput{
		Host:     c.Remote,
		Port:     sshfs.DefaultPort,
		User:     c.User,
		Password: password,
		Timeout:  v.GetDuration(flagConnectTimeout),
	})
	if err != nil {
		return err
	}
	defer func() {
		_ = remoteFileSystem.Close()
	}()

	syncer := &sync.Syncer{
		LocalFileSystem:  lfs.New(afero.NewOsFs()),
		RemoteFileSystem: remoteFileSystem,
		Logger:           logger,
		ContinueOnError:  v.GetBool(flagContinueOnError),
		DryRun:           v.GetBool(flagDryRun),
		Atomic:           v.GetBool(flagAtomic),
		BufferSize:       v.GetInt(flagBufferSize),
		Precision:        v.GetDuration(flagTimestampPrecision),
	}

	run, err := syncer.SyncLocations(ctx, locations)
	printSummary(run, timeLayout, timeZone)
	if err != nil {
		return err
	}
	if !run.Ok() {
		return fmt.Errorf("%d failures during sync", run.Failed())
	}
	return nil
}

func main() {
	rootCommand := &cobra.Command{
		Use:                   `decksync [flags]`,
		DisableFlagsInUseLine: true,
		Short: strings.Join([]string{
			"decksync synchronizes configured directory pairs between this machine and a remote host over SSH.",
			"For each configured location, the newer side of every file pair is copied over the older side.",
			"Without a subcommand, the sync runs only when auto_sync is enabled in the configuration.",
		}, "\n"),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := initViper(cmd)
			if err != nil {
				return fmt.Errorf("error initializing viper: %w", err)
			}
			c, err := config.Load(v.GetString(flagConfig))
			if err != nil {
				return err
			}
			if !c.AutoSync {
				fmt.Println("auto_sync is disabled; run \"decksync sync\" to synchronize")
				for _, loc := range c.Locations {
					fmt.Printf("%s: %s <-> %s\n", loc.Name, loc.LocalPath, loc.RemotePath)
				}
				return nil
			}
			return runSync(cmd, nil)
		},
	}
	initSyncCommandFlags(rootCommand.Flags())

	syncCommand := &cobra.Command{
		Use:                   "sync [location...]",
		DisableFlagsInUseLine: true,
		Short:                 "synchronize all configured locations, or only the named ones",
		SilenceErrors:         true,
		SilenceUsage:          true,
		RunE:                  runSync,
	}
	initSyncCommandFlags(syncCommand.Flags())

	locationsCommand := &cobra.Command{
		Use:                   "locations",
		DisableFlagsInUseLine: true,
		Short:                 "list the configured locations",
		SilenceErrors:         true,
		SilenceUsage:          true,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := initViper(cmd)
			if err != nil {
				return fmt.Errorf("error initializing viper: %w", err)
			}
			c, err := config.Load(v.GetString(flagConfig))
			if err != nil {
				return err
			}
			if err := c.Validate(); err != nil {
				return fmt.Errorf("error validating config: %w", err)
			}
			for _, loc := range c.Locations {
				if len(loc.Files) > 0 {
					fmt.Printf("%s: %s <-> %s (%d files)\n", loc.Name, loc.LocalPath, loc.RemotePath, len(loc.Files))
				} else {
					fmt.Printf("%s: %s <-> %s (full tree)\n", loc.Name, loc.LocalPath, loc.RemotePath)
				}
			}
			return nil
		},
	}
	initConfigFlags(locationsCommand.Flags())

	layoutsCommand := &cobra.Command{
		Use:                   `layouts`,
		DisableFlagsInUseLine: true,
		Short:                 "show supported timestamp layouts",
		SilenceErrors:         true,
		SilenceUsage:          true,
		RunE: func(cmd *cobra.Command, args []string) error {
			names := make([]string, 0, len(ts.NamedLayouts))
			for name := range ts.NamedLayouts {
				names = append(names, name)
			}
			sort.Strings(names)
			for _, name := range names {
				fmt.Printf("%s: %s\n", name, ts.NamedLayouts[name])
			}
			return nil
		},
	}

	versionCommand := &cobra.Command{
		Use:                   `version`,
		DisableFlagsInUseLine: true,
		Short:                 "show version",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println(DeckSyncVersion)
			return nil
		},
	}

	rootCommand.AddCommand(syncCommand, locationsCommand, layoutsCommand, versionCommand)

	// a .env file in the working directory may hold the password variable
	_ = godotenv.Load()

	if err := rootCommand.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "decksync: %v\n", err)
		os.Exit(1)
	}
}
