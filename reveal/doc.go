// Package reveal opens the folder containing a file in the platform's file
// manager, selecting the file where the file manager supports it.
//
// Windows runs explorer.exe /select,<path> and macOS runs open -R <path>.
// Other platforms open the containing directory with github.com/pkg/browser,
// which delegates to xdg-open.
//
// # Example Usage
//
//	if err := reveal.Reveal(ctx, `C:\Windows\notepad.exe`, 0); err != nil {
//	    return err
//	}
package reveal
