package sharepicture

import (
	"encoding/json"

	"github.com/pkg/errors"
)

// Picture describes basic details of what makes up a picture
type Picture struct {
	Make        string `json:"make"`
	Category    string `json:"category"`
	Subcategory string `json:"subcategory"`
	Owner       string `json:"owner"`
}

// QueryResult structure used for handling result of queryAllPictures
type QueryResult struct {
	Key    string `json:"Key"`
	Record *Picture
}

//DecodePicture decodes the payload returned by queryPicture
func DecodePicture(payload []byte) (*Picture, error) {
	var picture Picture

	err := json.Unmarshal(payload, &picture)
	if err != nil {
		return nil, errors.Wrap(err, "cannot decode picture")
	}

	return &picture, nil
}

//DecodePictures decodes the payload returned by queryAllPictures.
// An empty ledger decodes to an empty, non nil, slice.
func DecodePictures(payload []byte) ([]QueryResult, error) {
	results := []QueryResult{}

	err := json.Unmarshal(payload, &results)
	if err != nil {
		return nil, errors.Wrap(err, "cannot decode pictures")
	}

	if results == nil {
		results = []QueryResult{}
	}

	return results, nil
}
