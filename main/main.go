package main

import (
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"runtime"
	"runtime/pprof"
	"time"

	"github.com/rawbytedev/zbytes"
	"github.com/rawbytedev/zbytes/pkg/bufpool"
)

func main() {
	go func() {
		log.Println(http.ListenAndServe("localhost:6060", nil))
	}()
	f, err := os.Create("mem.prof")
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()
	runtime.MemProfileRate = 1

	var pool bufpool.Pool
	payload := make([]byte, 16*1024)
	for i := 0; i < 10000; i++ {
		b := pool.Copy(payload)
		head := b.SplitTo(256)
		c := b.Clone()
		tail := c.Slice(1024, 8192)
		_ = zbytes.FromStatic("static views never count").Clone()
		tail.Free()
		c.Free()
		head.Free()
		b.Free()
	}
	pprof.WriteHeapProfile(f)
	time.Sleep(5 * time.Minute)
}
