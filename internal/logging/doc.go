// Package logging configures zerolog for empdash and carries loggers and trace
// IDs through context.Context.
package logging
