package celo

// The slice of the Election contract ABI the relay needs: the vote
// event plus the two activation entry points.
const electionABI = `[
	{
		"anonymous": false,
		"inputs": [
			{"indexed": true, "internalType": "address", "name": "account", "type": "address"},
			{"indexed": true, "internalType": "address", "name": "group", "type": "address"},
			{"indexed": false, "internalType": "uint256", "name": "value", "type": "uint256"}
		],
		"name": "ValidatorGroupVoteCast",
		"type": "event"
	},
	{
		"inputs": [{"internalType": "address", "name": "account", "type": "address"}],
		"name": "hasActivatablePendingVotes",
		"outputs": [{"internalType": "bool", "name": "", "type": "bool"}],
		"stateMutability": "view",
		"type": "function"
	},
	{
		"inputs": [
			{"internalType": "address", "name": "group", "type": "address"},
			{"internalType": "address", "name": "account", "type": "address"}
		],
		"name": "activateForAccount",
		"outputs": [{"internalType": "bool", "name": "", "type": "bool"}],
		"stateMutability": "nonpayable",
		"type": "function"
	}
]`

const voteCastEventName = "ValidatorGroupVoteCast"
