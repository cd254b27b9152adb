package termkey_test

import (
	"fmt"
	"log"
	"strings"

	"github.com/jcorbin/rawterm/termkey"
)

func ExampleEvents() {
	in := strings.NewReader("hi\x1b[A\x1b[<0;3;4M\x1b[1;5C\x1b[?")
	for ev, err := range termkey.Events(in) {
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(ev.Type, ev)
	}
	// Output:
	// KeyEvent h
	// KeyEvent i
	// KeyEvent Up
	// MouseEvent Press(Left)@3,4
	// KeyEvent Ctrl+Right
	// UnsupportedEvent Unsupported("\x1b[?")
}

func ExampleKeys() {
	in := strings.NewReader("ls\x1b[M\x20\x21\x21\r\x03")
	for k, err := range termkey.Keys(in) {
		if err != nil {
			log.Fatal(err)
		}
		switch k {
		case termkey.Ctrl('c'):
			fmt.Println("quit")
			return
		case termkey.Char('\n'):
			fmt.Println("enter")
		default:
			fmt.Printf("key %v\n", k)
		}
	}
	// Output:
	// key l
	// key s
	// enter
	// quit
}

func ExampleDecoder_Raw() {
	dec := termkey.NewDecoder(strings.NewReader("\x1b[15~\x1bOP"))
	for ev := range dec.Events() {
		fmt.Printf("%v %q\n", ev, dec.Raw())
	}
	// Output:
	// F5 "\x1b[15~"
	// F1 "\x1bOP"
}
