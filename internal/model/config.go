package model

// Config is a key-value record stored under "config:{key}".
type Config struct {
	Key    string         `json:"key"`
	Data   map[string]any `json:"data"`
	Active bool           `json:"active"`
}

func (c Config) Live() bool { return c.Active }

type ConfigCreate struct {
	Key  string         `json:"key" validate:"required"`
	Data map[string]any `json:"data" validate:"required"`
}

// ConfigPatch shallow-merges Data into the stored data.
type ConfigPatch struct {
	Data Optional[map[string]any] `json:"data"`
}

func (p ConfigPatch) Validate() error {
	return validateFields(namedField{"data", p.Data})
}
