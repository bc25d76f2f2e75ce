package main

import (
	"github.com/karlseguin/dlist"
	"github.com/wsxiaoys/terminal"
)

func main() {
	l := dlist.Build(dlist.Configure().Capacity(1000))
	for i := int32(0); i < 1000; i++ {
		l.PushBack(i * i)
	}
	terminal.Stdout.Colorf("@{c}len %d", l.Len()).Reset().Nl()

	for _, index := range []int{0, 31, 500, 999, 1000} {
		value, ok := l.Get(index)
		if ok {
			terminal.Stdout.Color("g").Print(index, " => ", value).Reset().Nl()
		} else {
			terminal.Stdout.Color("r").Print(index, " => miss").Reset().Nl()
		}
	}
}
