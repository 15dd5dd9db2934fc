package succession

import "errors"

var ErrSuccessorReference = errors.New("referenced successor does not exist")
