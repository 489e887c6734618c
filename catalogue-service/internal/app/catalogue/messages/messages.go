package messages

import _ "embed"

// Bundle - сообщения Catalogue Service для problem.LoadMessages
//
//go:embed messages.yaml
var Bundle []byte
