// Package docs Parking Registry API.
//
// Реестр парковок с координатами и поиском ближайшей парковки к точке.
// Запросы, для которых ближайшая парковка дальше 0.5 км, попадают в журнал
// notification_distances.
//
//	Schemes: http, https
//	BasePath: /
//	Version: 1.0.0
//
//	Consumes:
//	- application/json
//
//	Produces:
//	- application/json
//
//	Security:
//	- BearerAuth:
//
//	SecurityDefinitions:
//	BearerAuth:
//	     type: apiKey
//	     name: Authorization
//	     in: header
//
// swagger:meta
package docs
