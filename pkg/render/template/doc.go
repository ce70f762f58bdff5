// Package template defines the rendering seam used to turn a template and a
// set of bindings into text. The prompt engine only needs string templates,
// so the contract is kept to RenderString plus filter registration.
package template
