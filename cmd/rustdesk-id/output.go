package main

import (
	"fmt"
	"io"

	"github.com/Jxpro/custom-rustdesk/internal/ui"
)

// configLocations lists where RustDesk keeps RustDesk.toml.
var configLocations = []struct {
	platform string
	path     string
}{
	{"macOS", "~/Library/Preferences/com.carriez.RustDesk/RustDesk.toml"},
	{"Linux", "~/.config/rustdesk/RustDesk.toml"},
	{"Windows", `%AppData%\RustDesk\config\RustDesk.toml`},
	{"Windows service", `C:\Windows\ServiceProfiles\LocalService\AppData\Roaming\RustDesk\config\RustDesk.toml`},
}

func printEncrypted(w io.Writer, id, token string) {
	fmt.Fprintf(w, "%s Encrypted custom ID %s\n", ui.Success.Sprint("✓"), ui.Highlight.Sprint(id))
	fmt.Fprintf(w, "  %s\n", ui.Token.Sprint(token))
}

func printDecrypted(w io.Writer, token, id string) {
	fmt.Fprintf(w, "%s Decrypted token %s\n", ui.Success.Sprint("✓"), ui.Highlight.Sprint(token))
	fmt.Fprintf(w, "  %s\n", ui.Token.Sprint(id))
}

func printClipboardCopied(w io.Writer) {
	fmt.Fprintln(w, ui.Muted.Sprint("copied to clipboard"))
}

func printClipboardFailed(w io.Writer) {
	fmt.Fprintln(w, ui.Warning.Sprint("!")+" could not copy to clipboard, copy the value above manually")
}

func printUsage(w io.Writer, token string) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "To use this ID:")
	fmt.Fprintln(w, "  1. Quit RustDesk, including the background service.")
	fmt.Fprintln(w, "  2. Open RustDesk.toml (see locations below).")
	fmt.Fprintf(w, "  3. Set %s.\n", ui.Code.Sprintf("id = '%s'", token))
	fmt.Fprintln(w, "  4. Start RustDesk again. The new ID is shown on the main window.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "RustDesk config file locations:")
	for _, loc := range configLocations {
		fmt.Fprintf(w, "  %-16s %s\n", loc.platform+":", ui.Path.Sprint(loc.path))
	}
}

func printCompareHint(w io.Writer) {
	fmt.Fprintln(w, ui.Info.Sprint("→")+" Compare it with the ID shown in RustDesk.")
}

func printSeedWarning(w io.Writer, err error) {
	fmt.Fprintf(w, "%s this identifier cannot be used as a seed: %v\n", ui.Warning.Sprint("!"), err)
}
