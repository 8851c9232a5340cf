// Package procutil provides metadata about the running process.
//
// The search order starts in the directory the application was loaded from,
// so the locator needs a reliable answer to "where is my own binary?".
// This package uses github.com/shirou/gopsutil for that, which asks the OS
// directly:
//
//   - Windows: QueryFullProcessImageName
//   - Linux: /proc/<pid>/exe
//   - macOS/BSD: sysctl / proc_pidpath
//
// When gopsutil cannot answer, os.Executable is used instead.
//
// # Example Usage
//
//	dir, err := procutil.ExecutableDir()
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("application directory: %s\n", dir)
//
//	// Used in usage hints such as "Try 'findpath -?' for more help."
//	name := procutil.BinaryName("findpath")
package procutil
