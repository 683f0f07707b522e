package analytics

// Device types.
const (
	DeviceMobile  = "Mobile"
	DeviceTablet  = "Tablet"
	DeviceDesktop = "Desktop"
)

// Other is the label of an unknown browser or OS.
const Other = "Other"

var (
	chrome = Pattern(`chrome`)

	deviceMatcher = NewMatcher(DeviceDesktop,
		Rule{DeviceMobile, Pattern(`mobile|android|iphone|ipod|blackberry|windows phone`)},
		Rule{DeviceTablet, Pattern(`tablet|ipad|kindle|silk`)},
	)

	// chromium based Opera reports Chrome, the order is kept on purpose
	browserMatcher = NewMatcher(Other,
		Rule{"Edge", Pattern(`edge|edg`)},
		Rule{"Chrome", chrome},
		Rule{"Safari", All(Pattern(`safari`), Not(chrome))},
		Rule{"Firefox", Pattern(`firefox`)},
		Rule{"IE", Pattern(`msie|trident`)},
		Rule{"Opera", Pattern(`opera|opr`)},
	)

	// Android user agents carry "Linux" and are reported as Linux
	osMatcher = NewMatcher(Other,
		Rule{"Windows", Pattern(`windows`)},
		Rule{"macOS", Pattern(`macintosh|mac os`)},
		Rule{"Linux", Pattern(`linux`)},
		Rule{"Android", Pattern(`android`)},
		Rule{"iOS", Pattern(`iphone|ipad|ipod`)},
	)
)

// Device returns Mobile, Tablet or Desktop.
func Device(userAgent string) string {
	return deviceMatcher.Match(userAgent)
}

// Browser returns Edge, Chrome, Safari, Firefox, IE, Opera or Other.
func Browser(userAgent string) string {
	return browserMatcher.Match(userAgent)
}

// OS returns Windows, macOS, Linux, Android, iOS or Other.
func OS(userAgent string) string {
	return osMatcher.Match(userAgent)
}
