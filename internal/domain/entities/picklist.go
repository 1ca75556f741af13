package entities

// Picklist is a pending work order attached to one of the operator's routes.
//
// Nome follows the reconciliation chain picklist name -> linked machine asset
// tag -> picklist's own asset tag -> "Picklist {id}". Field names are the
// Portuguese ones the operator app consumes.
type Picklist struct {
	ID   string `json:"id"`
	Nome string `json:"nome"`
}
