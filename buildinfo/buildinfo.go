package buildinfo

import (
	"fmt"
	"strconv"
	"time"
)

var (
	Version       = "head" // set by command-line on CI release builds
	BuiltAt       = ""     // set by command-line on CI release builds
	Commit        = ""     // set by command-line on CI release builds
	VersionString = ""     // formatted on boot from 'version' and 'builtAt'
)

func init() {
	buildVersionString()
}

func buildVersionString() {
	if BuiltAt != "" {
		epoch, err := strconv.ParseInt(BuiltAt, 10, 64)
		if err != nil {
			VersionString = fmt.Sprintf("bridgegen %s, invalid build date", Version)
		} else {
			VersionString = fmt.Sprintf("bridgegen %s, built on %s", Version, time.Unix(epoch, 0).UTC().Format("Jan _2 2006 @ 15:04:05"))
		}
	} else {
		VersionString = fmt.Sprintf("bridgegen %s, no build date", Version)
	}
	if Commit != "" {
		VersionString = fmt.Sprintf("%s, ref %s", VersionString, Commit)
	}
}

// BuildTime returns the parsed build date, or nil for dev builds
func BuildTime() *time.Time {
	if BuiltAt == "" {
		return nil
	}
	epoch, err := strconv.ParseInt(BuiltAt, 10, 64)
	if err != nil {
		return nil
	}
	t := time.Unix(epoch, 0).UTC()
	return &t
}
