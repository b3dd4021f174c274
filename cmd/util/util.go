package util

import (
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kvload/kvload/lib/loadgen"
	"github.com/kvload/kvload/lib/serializer"
)

const (
	// Wrap is the number of characters to Wrap the help text at
	Wrap int = 50
)

// WrapString wraps a string at Wrap characters
func WrapString(text string) string {
	var wrappedLines []string
	var currentLine strings.Builder
	lineWidth := 0

	for _, word := range strings.Fields(text) {
		wordWidth := len(word)

		// Check if we need to wrap
		if lineWidth > 0 && lineWidth+1+wordWidth > Wrap {
			wrappedLines = append(wrappedLines, currentLine.String())
			currentLine.Reset()
			lineWidth = 0
		}

		// Add space before word (if not first word on line)
		if lineWidth > 0 {
			currentLine.WriteString(" ")
			lineWidth++
		}

		// Add the word
		currentLine.WriteString(word)
		lineWidth += wordWidth
	}

	// Add any remaining text
	if currentLine.Len() > 0 {
		wrappedLines = append(wrappedLines, currentLine.String())
	}

	return strings.Join(wrappedLines, "\n")
}

// InitConfig initializes configuration from environment variables
func InitConfig() {
	// load env files
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")

	// initialize viper
	viper.SetEnvPrefix("kvload")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv() // read in environment variables that match
}

// BindCommandFlags binds a command's own and inherited flags to viper
func BindCommandFlags(cmd *cobra.Command) error {
	if err := viper.BindPFlags(cmd.Flags()); err != nil {
		return err
	}
	return viper.BindPFlags(cmd.InheritedFlags())
}

// SetupLoadFlags adds the shared load generator flags to a command
func SetupLoadFlags(cmd *cobra.Command) {
	key := "threads"
	cmd.PersistentFlags().Int(key, 100, WrapString("Number of concurrent workers"))

	key = "pattern"
	cmd.PersistentFlags().String(key, "consistent", WrapString("Emulated load pattern (unthrottled, consistent, bursty)"))

	key = "duration"
	cmd.PersistentFlags().Duration(key, loadgen.DefaultDuration, WrapString("How long to generate load for"))

	key = "read-fraction"
	cmd.PersistentFlags().Float64(key, 0.9, WrapString("Probability that an iteration reads instead of writes"))

	key = "keys"
	cmd.PersistentFlags().Int(key, 0, WrapString("Keyspace size to draw keys from (0 = default)"))

	key = "csv"
	cmd.PersistentFlags().String(key, "", WrapString("Optional path to save per-worker results as CSV"))

	key = "metrics-file"
	cmd.PersistentFlags().String(key, "", WrapString("Optional path to dump Prometheus metrics to after the run"))
}

// GetLoadParams reads the load generator parameters from viper
func GetLoadParams() (loadgen.Params, error) {
	pattern, err := loadgen.ParsePattern(viper.GetString("pattern"))
	if err != nil {
		return loadgen.Params{}, err
	}

	return loadgen.Params{
		Threads:      viper.GetInt("threads"),
		Pattern:      pattern,
		Duration:     viper.GetDuration("duration"),
		ReadFraction: viper.GetFloat64("read-fraction"),
		KeySpread:    viper.GetInt("keys"),
	}, nil
}

// GetSerializer creates a snapshot serializer based on configuration
func GetSerializer() (serializer.Serializer, error) {
	return serializer.New(viper.GetString("serializer"))
}
