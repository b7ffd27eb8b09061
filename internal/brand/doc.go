// Package brand holds the current brand identity record and the helpers that derive
// display strings from it.
//
// A Record is decoded once from configuration and passed by value to every consumer;
// nothing in the package mutates it.
package brand
