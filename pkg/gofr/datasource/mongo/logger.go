package mongo

import (
	"encoding/json"
	"fmt"
	"io"
)

type QueryLog struct {
	Query      string `json:"query"`
	Duration   int64  `json:"duration"`
	Collection string `json:"collection,omitempty"`
	Filter     any    `json:"filter,omitempty"`
}

func (ql *QueryLog) PrettyPrint(writer io.Writer) {
	var filter string

	if ql.Filter != nil {
		b, err := json.Marshal(ql.Filter)
		if err != nil {
			filter = fmt.Sprint(ql.Filter)
		} else {
			filter = string(b)
		}
	}

	fmt.Fprintf(writer, "\u001B[38;5;8m%-32s \u001B[38;5;206m%-6s\u001B[0m %8d\u001B[38;5;8mms\u001B[0m %s %s\n",
		ql.Query, "MONGO", ql.Duration, ql.Collection, filter)
}
