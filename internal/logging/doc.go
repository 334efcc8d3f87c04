// Package logging builds the zap logger that writes the application log file.
package logging
