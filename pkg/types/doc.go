// Package types defines the entity types, collection documents, the Store
// interface, configuration, and the error taxonomy shared by every planboard
// component.
//
// Entities reference each other by identifier only. Each collection is owned
// by exactly one component: users by the user registry, teams by the team
// registry, boards and tasks by the board engine.
package types
