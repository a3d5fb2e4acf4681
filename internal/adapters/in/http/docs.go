package http

import (
	"encoding/json"
	"sync"

	"dispatch/internal/generated/servers"

	"github.com/swaggo/swag"
)

// openAPIDoc feeds the embedded OpenAPI document to swag, which is where
// echo-swagger reads doc.json from.
type openAPIDoc struct {
	once sync.Once
	json string
}

// ReadDoc returns the embedded document as JSON, or {} if it cannot be loaded.
func (d *openAPIDoc) ReadDoc() string {
	d.once.Do(func() {
		doc, err := servers.GetSwagger()
		if err != nil {
			d.json = "{}"
			return
		}
		raw, err := json.Marshal(doc)
		if err != nil {
			d.json = "{}"
			return
		}
		d.json = string(raw)
	})
	return d.json
}

var registerDocOnce sync.Once

func registerSwaggerDoc() {
	registerDocOnce.Do(func() {
		swag.Register(swag.Name, &openAPIDoc{})
	})
}
