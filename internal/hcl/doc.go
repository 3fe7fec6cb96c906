// Package hcl provides the concrete HCL implementation of the config.Loader
// interface. It is responsible for parsing the project file, evaluating its
// expressions and translating the decoded schema into config.Project.
package hcl
