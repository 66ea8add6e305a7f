// Package training provides the Training entity of the catalog and the rules
// governing its lifecycle.
//
// The package includes:
//   - Training: an immutable value; every change returns a new Training
//   - Factory: builds Trainings from untrusted Input, assigning identity and timestamps
//   - Status: a closed sum type (Draft, Open, Completed, Canceled with a reason)
//     and the state machine over it
//   - Level: the fixed difficulty enumeration
//
// Key business rules:
//   - Title, description and location are required; capacity is at least 1;
//     price is not negative
//   - Status follows Draft -> Open -> Completed; Open may go back to Draft;
//     Draft may not jump to Completed
//   - Draft and Open trainings may be canceled with a reason of at least
//     5 characters; Completed and Canceled are final
//   - A transition to the current status returns the training unchanged,
//     updatedAt included
//
// Every rule violation is returned as an error value; nothing here panics,
// logs, or reads the wall clock.
package training
