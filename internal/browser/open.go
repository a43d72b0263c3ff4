package browser

import (
	"fmt"
	"net/url"
	"os/exec"
	"runtime"
)

// starter launches a command without waiting for it. Tests replace it.
var starter = func(name string, args ...string) error {
	return exec.Command(name, args...).Start()
}

// Open opens the specified URL in the user's default browser. Only absolute
// http and https URLs are accepted.
func Open(link string) error {
	u, err := url.Parse(link)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("browser.Open: not a web link: %q", link)
	}
	switch runtime.GOOS {
	case "darwin":
		return starter("open", link)
	case "linux":
		return starter("xdg-open", link)
	case "windows":
		return starter("rundll32", "url.dll,FileProtocolHandler", link)
	default:
		return fmt.Errorf("unsupported OS: %s", runtime.GOOS)
	}
}
