package index

import "github.com/bnclabs/golog"

func init() {
	setts := map[string]interface{}{
		"log.level":      "ignore",
		"log.colorfatal": "red",
		"log.colorerror": "hired",
		"log.colorwarn":  "yellow",
	}
	log.SetLogger(nil, setts)
	LogComponents("all")
}
