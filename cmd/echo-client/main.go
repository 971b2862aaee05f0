package main

import (
	"flag"
	"fmt"
	"net"
	"os"
	"time"

	"github.com/anpotashev/frame-common/pkg/connhelper"
)

func main() {
	address := flag.String("addr", "127.0.0.1:9000", "Server address")
	timeout := flag.Duration("timeout", 5*time.Second, "Dial timeout")
	flag.Parse()

	messages := flag.Args()
	if len(messages) == 0 {
		fmt.Fprintln(os.Stderr, "usage: echo-client [-addr host:port] message [message...]")
		os.Exit(2)
	}

	conn, err := net.DialTimeout("tcp", *address, *timeout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to connect to %s: %v\n", *address, err)
		os.Exit(1)
	}
	defer conn.Close()

	helper := connhelper.New(conn)
	for _, msg := range messages {
		if err := helper.Write([]byte(msg)); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to send %q: %v\n", msg, err)
			os.Exit(1)
		}
		reply, err := helper.Read()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to read the reply: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("%s\n", reply)
	}
}
