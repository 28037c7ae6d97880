package locate

import "errors"

// ErrConfiguration is returned when no dictionary path can be derived from the
// override, the environment or the user's home directory.
var ErrConfiguration = errors.New("no dictionary path configured: set BULLSHIT_FILE or HOME")
