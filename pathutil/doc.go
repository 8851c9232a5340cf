// Package pathutil builds the ordered directory search used to locate files
// and provides the directory-search primitive behind locate.Searcher.
//
// # Search Order
//
// SearchOrder lists the directories in the order they are probed:
//
//  1. Directories named by a search manifest (when -m is used)
//  2. The directory the application was loaded from
//  3. The current directory
//  4. The system directory (Windows: System32; Unix: /usr/bin)
//  5. The 16-bit system directory (Windows only: %WINDIR%\SYSTEM)
//  6. The OS directory (Windows: %WINDIR%; Unix: /bin)
//  7. Each directory listed in PATH
//
// # Cross-Platform Behavior
//
// On Windows, SearchPathW is bound at runtime from kernel32.dll and used
// directly, so the OS applies its own rules (including any activated
// manifest). When the export cannot be found, or on any other OS, FSSearcher
// walks the same order over an afero filesystem.
//
// # Example
//
//	env := pathutil.DefaultEnvironment()
//	resolver := locate.NewResolver(pathutil.NewSearcher(env), os.Stdout)
//	path, err := resolver.Resolve(locate.Request{
//	    FileName:   "git",
//	    Extensions: pathutil.FallbackExtensions(env),
//	})
//
// # Testing
//
// FSSearcher accepts any afero.Fs, so tests build a directory tree in
// afero.NewMemMapFs and pair it with a StaticEnvironment.
package pathutil
