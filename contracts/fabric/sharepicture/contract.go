package sharepicture

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/hyperledger/fabric-contract-api-go/contractapi"
)

// PictureKeyPrefix prefixes the keys of the pictures created by InitLedger
const PictureKeyPrefix = "PICTURE"

// SmartContract provides functions for managing pictures
type SmartContract struct {
	contractapi.Contract
}

// InitialPictures is the base set of pictures stored by InitLedger, picture i is
// stored under PICTURE<i>
func InitialPictures() []Picture {
	return []Picture{
		{Make: "A", Category: "Nature", Subcategory: "Rock", Owner: "A"},
		{Make: "A", Category: "Nature", Subcategory: "Sky", Owner: "A"},
		{Make: "A", Category: "Animal", Subcategory: "Lion", Owner: "A"},
		{Make: "B", Category: "Nature", Subcategory: "Rock", Owner: "B"},
		{Make: "B", Category: "Animal", Subcategory: "Snake", Owner: "B"},
		{Make: "B", Category: "Insect", Subcategory: "Spider", Owner: "B"},
		{Make: "C", Category: "Nature", Subcategory: "Rock", Owner: "C"},
		{Make: "C", Category: "Nature", Subcategory: "Sky", Owner: "C"},
		{Make: "C", Category: "Nature", Subcategory: "Planet", Owner: "C"},
		{Make: "extD", Category: "Nature", Subcategory: "Rock", Owner: "C"},
	}
}

// PictureKey returns the world state key of the i-th initial picture
func PictureKey(i int) string {
	return PictureKeyPrefix + strconv.Itoa(i)
}

//InitLedger adds a base set of pictures to the ledger
func (s *SmartContract) InitLedger(ctx contractapi.TransactionContextInterface) error {
	for i, picture := range InitialPictures() {
		pictureJSON, err := json.Marshal(picture)
		if err != nil {
			return err
		}

		err = ctx.GetStub().PutState(PictureKey(i), pictureJSON)
		if err != nil {
			return fmt.Errorf("failed to put to world state: %v", err)
		}
	}

	return nil
}

//CreatePicture adds a new picture to the world state with given details
func (s *SmartContract) CreatePicture(ctx contractapi.TransactionContextInterface, pictureNumber string, make string, category string, subcategory string, owner string) error {
	exists, err := s.PictureExists(ctx, pictureNumber)
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("the picture %s already exists", pictureNumber)
	}

	picture := Picture{
		Make:        make,
		Category:    category,
		Subcategory: subcategory,
		Owner:       owner,
	}

	pictureJSON, err := json.Marshal(picture)
	if err != nil {
		return err
	}

	return ctx.GetStub().PutState(pictureNumber, pictureJSON)
}

//QueryPicture returns the picture stored in the world state with given id
func (s *SmartContract) QueryPicture(ctx contractapi.TransactionContextInterface, pictureNumber string) (*Picture, error) {
	pictureJSON, err := ctx.GetStub().GetState(pictureNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to read from world state: %v", err)
	}
	if pictureJSON == nil {
		return nil, fmt.Errorf("%s does not exist", pictureNumber)
	}

	var picture Picture
	err = json.Unmarshal(pictureJSON, &picture)
	if err != nil {
		return nil, err
	}

	return &picture, nil
}

//QueryAllPictures returns all pictures found in world state
func (s *SmartContract) QueryAllPictures(ctx contractapi.TransactionContextInterface) ([]QueryResult, error) {
	// range query with empty string for startKey and endKey does an
	// open-ended query of all pictures in the chaincode namespace.
	resultsIterator, err := ctx.GetStub().GetStateByRange("", "")
	if err != nil {
		return nil, err
	}
	defer resultsIterator.Close()

	results := []QueryResult{}
	for resultsIterator.HasNext() {
		queryResponse, err := resultsIterator.Next()
		if err != nil {
			return nil, err
		}

		var picture Picture
		err = json.Unmarshal(queryResponse.Value, &picture)
		if err != nil {
			return nil, err
		}

		results = append(results, QueryResult{Key: queryResponse.Key, Record: &picture})
	}

	return results, nil
}

//ChangePictureOwner updates the owner field of picture with given id in world state
func (s *SmartContract) ChangePictureOwner(ctx contractapi.TransactionContextInterface, pictureNumber string, newOwner string) error {
	picture, err := s.QueryPicture(ctx, pictureNumber)
	if err != nil {
		return err
	}

	picture.Owner = newOwner

	pictureJSON, err := json.Marshal(picture)
	if err != nil {
		return err
	}

	return ctx.GetStub().PutState(pictureNumber, pictureJSON)
}

//PictureExists returns true when a picture with given ID exists in world state
func (s *SmartContract) PictureExists(ctx contractapi.TransactionContextInterface, pictureNumber string) (bool, error) {
	pictureJSON, err := ctx.GetStub().GetState(pictureNumber)
	if err != nil {
		return false, fmt.Errorf("failed to read from world state: %v", err)
	}

	return pictureJSON != nil, nil
}
