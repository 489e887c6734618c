package messages

import _ "embed"

//go:embed messages.yaml
var Bundle []byte
