// Package cli implements the interactive command loop for senders and
// recipients. Files are sealed and opened locally: the commands only ever
// move ciphertext, envelope metadata and one-time codes across the wire.
package cli
