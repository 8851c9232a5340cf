// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package locate resolves a file name against an ordered list of search
// directories, retrying with fallback extensions when the name has none.
//
// The package is split into four pieces:
//
//   - ParseList turns a delimited environment value (PATHEXT) into an ordered
//     list of candidate extensions.
//   - Prober performs a single directory search through a Searcher, growing its
//     scratch buffer until the reported path length fits.
//   - Resolver drives the Prober across the extension list and stops at the
//     first match or at the first error that is not "file not found".
//   - QuotePath prepares a resolved path for display.
//
// # Example
//
//	searcher := pathutil.NewSearcher(pathutil.DefaultEnvironment())
//	resolver := locate.NewResolver(searcher, os.Stdout)
//	path, err := resolver.Resolve(locate.Request{
//	    FileName:   "notepad",
//	    Extensions: locate.ParseList(os.Getenv("PATHEXT"), ';'),
//	})
//	if err != nil {
//	    var sysErr *locate.SystemError
//	    if errors.As(err, &sysErr) {
//	        fmt.Fprintf(os.Stderr, "%d: %s\n", sysErr.Code, sysErr.Description())
//	    }
//	    return err
//	}
//	fmt.Println(locate.QuotePath(path))
//
// # Error Classification
//
// Every failure from a probe is a *SystemError carrying the OS error code.
// Only the platform's file-not-found code is Recoverable; the Resolver treats
// it as "try the next extension". Anything else ends the resolution.
package locate
