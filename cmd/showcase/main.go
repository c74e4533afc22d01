// showcase is the command-line companion of the destination showcase
// server: browse the cards in a terminal, print a computed view, seed
// MongoDB from a catalog, or check how a schedule is read.
package main

func main() {
	Execute()
}
