// Package locate decides which dictionary file the command reads when no
// path is given on the command line.
//
// Lookup order: explicit override, the BULLSHIT_FILE environment variable,
// then the first existing file among ~/.bullshit, <user config
// dir>/bullshit.txt, ~/.config/bullshit.txt and /usr/share/bullshit.txt.
// ErrConfiguration is returned only when there is no override, no
// environment value and no home directory.
package locate
