package utils

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// PrettyJson formata qualquer valor como JSON indentado, para exibição
// em mensagens e logs. Valores que não podem ser serializados caem no
// formato %+v.
func PrettyJson(in any) string {
	buffer, ok := in.([]byte)
	if !ok {
		var err error
		buffer, err = json.Marshal(in)
		if err != nil {
			return fmt.Sprintf("%+v", in)
		}
	}

	var out bytes.Buffer
	if err := json.Indent(&out, buffer, "", "  "); err != nil {
		return string(buffer)
	}

	return out.String()
}
