package elasticsearch

import (
	"encoding/json"
	"fmt"
	"io"
)

type QueryLog struct {
	Index    string         `json:"index"`
	Query    map[string]any `json:"query"`
	Duration int64          `json:"duration"`
}

func (ql *QueryLog) PrettyPrint(writer io.Writer) {
	b, _ := json.Marshal(ql.Query)

	fmt.Fprintf(writer, "\u001B[38;5;8m%-32s \u001B[38;5;220m%-6s\u001B[0m %8d\u001B[38;5;8mms\u001B[0m %s\n",
		ql.Index, "ES", ql.Duration, b)
}
