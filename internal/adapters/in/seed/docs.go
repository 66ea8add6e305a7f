// Package seed fills the training catalog from a YAML fixture file.
//
// Every entry goes through the same commands an application would issue:
// it is created as a Draft and then walked through the lifecycle to the
// status it declares. An entry that breaks a domain rule fails the load
// with the file path and the entry index attached.
//
//	trainings:
//	  - title: Go basics
//	    description: Intro course
//	    date: 2025-05-15T09:00:00Z
//	    location: Room 1
//	    capacity: 10
//	    level: BEGINNER
//	    price: 0
//	    status: open
package seed
