package entities

// Route is a canonical delivery route as shown to the operator app.
//
// ID is the stable VMpay route identifier. Name is reconciled from the route
// object or observed picklist-route names and is not required to be unique;
// when nothing usable comes back from VMpay it is the generated
// "Rota {id}" label.
type Route struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
