package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var configFile string

var rootCmd = &cobra.Command{
	Use:   "s3file",
	Short: "Present an S3 object or a local path as a local file",
	Long: "s3file resolves a local path or an s3:// object reference to a path on " +
		"local disk, downloading the object into a temporary file when the input " +
		"is remote. The temporary file is removed when the command exits.",
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "path to a configuration file")
	pf.String("path", "", "local path or s3:// reference to resolve")
	pf.String("profile_name", "", "named AWS credential profile")
	pf.String("aws_access_key_id", "", "static access key id")
	pf.String("aws_secret_access_key", "", "static secret access key")
	pf.String("aws_session_token", "", "static session token")
	pf.String("region_name", "", "target AWS region")
	pf.String("role_arn", "", "role to assume; static credentials are then ignored")
	pf.String("session_name", "", "label for the assumed-role session")
	pf.String("retry_mode", "", "client retry mode (standard or adaptive)")
	pf.Int("max_attempts", 0, "maximum retry attempts forwarded to the client")

	rootCmd.AddCommand(newResolveCommand())
	rootCmd.AddCommand(newCatCommand())
}
