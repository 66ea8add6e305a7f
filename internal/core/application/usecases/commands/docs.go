// Package commands contains the operations that change the training catalog.
// Every command is a guarded value built by its constructor; its handler
// loads trainings from a ports.TrainingRepository, applies the domain rules
// and stores the resulting copy back.
package commands
