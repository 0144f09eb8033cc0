package main

import (
	"log"

	"share-picture/contracts/fabric/sharepicture"

	"github.com/hyperledger/fabric-contract-api-go/contractapi"
)

func main() {
	chaincode, err := contractapi.NewChaincode(new(sharepicture.SmartContract))
	if err != nil {
		log.Panicf("Error creating sp-logic chaincode: %v", err)
	}

	if err := chaincode.Start(); err != nil {
		log.Panicf("Error starting sp-logic chaincode: %v", err)
	}
}
