package messages

import _ "embed"

// Bundle - сообщения Feedback Service
//
//go:embed messages.yaml
var Bundle []byte
