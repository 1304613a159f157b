package config

import (
	"flag"
	"os"
	"time"

	"github.com/balahero03/Zero-Trust-Share-sub000/internal/flagx"
)

// parseFlags populates selected server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   gRPC bind address (e.g., ":50051")
//	-d string   PostgreSQL DSN
//	-s string   grant signing secret key
//	-l string   public base URL for share links
//	-t int      one-time code validity, minutes
//	-m int      max wrong-code attempts per code
//	-w int      rate-limit trailing window, minutes
//	-n int      max codes per channel inside the window
//	-i int      grant validity, minutes
//	-v int      invitation validity, hours
//	-q int      expired-share purge interval, minutes
//	-y string   delivery gateway URL
//	-r int      delivery attempts per code push
//	-u string   S3 root user
//	-p string   S3 root password
//	-b string   S3 bucket name
//	-g string   S3 region
//	-e string   S3 base endpoint (e.g., "http://127.0.0.1:9000/")
//
// Notes:
//   - The function first filters os.Args to only the flags it recognizes using
//     flagx.FilterArgs, avoiding collisions with other components.
//   - Duration flags are accepted as integers in minutes and then converted
//     to time.Duration values.
func parseFlags(config *Config) {
	// Filter args to include only the flags handled here.
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-s", "-l", "-t", "-m", "-w", "-n", "-i", "-v", "-q", "-y", "-r", "-u", "-p", "-b", "-g", "-e"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrGRPC, "a", config.EndpointAddrGRPC, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "grant signing secret key")
	fs.StringVar(&config.LinkBaseURL, "l", config.LinkBaseURL, "public base URL for share links")

	codeValidity := fs.Int("t", int(config.CodeValidityDuration.Minutes()), "one-time code validity (in minutes)")
	fs.IntVar(&config.MaxAttempts, "m", config.MaxAttempts, "max wrong-code attempts per code")
	rateWindow := fs.Int("w", int(config.RateLimitWindow.Minutes()), "rate-limit trailing window (in minutes)")
	fs.IntVar(&config.RateLimitMax, "n", config.RateLimitMax, "max codes per channel inside the window")
	grantValidity := fs.Int("i", int(config.GrantValidityDuration.Minutes()), "grant validity (in minutes)")
	invitationValidity := fs.Int("v", int(config.InvitationValidityDuration.Hours()), "invitation validity (in hours)")
	purgeInterval := fs.Int("q", int(config.PurgeInterval.Minutes()), "expired-share purge interval (in minutes)")

	fs.StringVar(&config.DeliveryGatewayURL, "y", config.DeliveryGatewayURL, "delivery gateway URL")
	fs.IntVar(&config.DeliveryMaxRetries, "r", config.DeliveryMaxRetries, "delivery attempts per code push")

	fs.StringVar(&config.S3RootUser, "u", config.S3RootUser, "S3 root user")
	fs.StringVar(&config.S3RootPassword, "p", config.S3RootPassword, "S3 root password")
	fs.StringVar(&config.S3Bucket, "b", config.S3Bucket, "S3 root bucket")
	fs.StringVar(&config.S3Region, "g", config.S3Region, "S3 root region")
	fs.StringVar(&config.S3BaseEndpoint, "e", config.S3BaseEndpoint, "S3 base endpoint")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.CodeValidityDuration = time.Duration(*codeValidity) * time.Minute
	config.RateLimitWindow = time.Duration(*rateWindow) * time.Minute
	config.GrantValidityDuration = time.Duration(*grantValidity) * time.Minute
	config.InvitationValidityDuration = time.Duration(*invitationValidity) * time.Hour
	config.PurgeInterval = time.Duration(*purgeInterval) * time.Minute
}
