// Command blogbuilder turns a directory of markdown files into a static blog.
package main

func main() {
	Execute()
}
