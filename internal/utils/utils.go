package utils

import (
	"encoding/json"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

func GenerateID() string {
	return uuid.NewString()
}

func DatatypesJSONFromStrings(ss []string) datatypes.JSON {
	b, _ := json.Marshal(ss)
	return datatypes.JSON(b)
}

func DatatypesJSONFromMap(m map[string]interface{}) datatypes.JSONMap {
	if m == nil {
		m = map[string]interface{}{}
	}
	return datatypes.JSONMap(m)
}
