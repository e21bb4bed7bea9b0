package pulse

import "fmt"

// Handle panics with a formatted description if err is non-nil.
// Command recording is not expected to fail once the device exists, a
// failure here means a programming error or a lost device.
func Handle(err error, desc string, args ...any) {
	if err != nil {
		text := fmt.Sprintf(desc, args...)
		panic(text + ": " + err.Error())
	}
}
