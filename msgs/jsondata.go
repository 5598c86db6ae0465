package msgs

// JsonDataTypeName is the wire type name of generic key/value documents.
// Auxiliary topics are published with this type because they are not tied to
// any structured schema.
const JsonDataTypeName = "cosim::types::JsonData"

// JsonData is a generic key/value document message.
type JsonData struct {
	Data map[string]any `json:"data" msgpack:"data"`
}

// NewJsonData creates a JsonData wrapping the given document.
func NewJsonData(data map[string]any) *JsonData {
	if data == nil {
		data = map[string]any{}
	}
	return &JsonData{Data: data}
}
