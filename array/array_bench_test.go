package array

import (
	"encoding/json"
	"testing"
	"time"

	goccyjson "github.com/goccy/go-json"
	jsoniter "github.com/json-iterator/go"
	"github.com/vmihailenco/msgpack/v5"
)

var sinkInt int

func BenchmarkPushPop_Array(b *testing.B) {
	const count = 1000
	b.ReportAllocs()
	b.ResetTimer()

	start := time.Now()
	for i := 0; i < b.N; i++ {
		for j := 0; j < count; j++ {
			var a Array[int, [64]int]
			for k := 0; k < 64; k++ {
				_ = a.Push(k)
			}
			for {
				v, ok := a.Pop()
				if !ok {
					break
				}
				sinkInt += v
			}
		}
	}
	elapsed := time.Since(start)

	b.StopTimer()
	perOp := float64(elapsed.Nanoseconds()) / float64(b.N*count)
	b.Logf("Array push/pop x64: %.2f ns/op", perOp)
}

func BenchmarkPushPop_Slice(b *testing.B) {
	const count = 1000
	b.ReportAllocs()
	b.ResetTimer()

	start := time.Now()
	for i := 0; i < b.N; i++ {
		for j := 0; j < count; j++ {
			var s []int
			for k := 0; k < 64; k++ {
				s = append(s, k)
			}
			for len(s) > 0 {
				sinkInt += s[len(s)-1]
				s = s[:len(s)-1]
			}
		}
	}
	elapsed := time.Since(start)

	b.StopTimer()
	perOp := float64(elapsed.Nanoseconds()) / float64(b.N*count)
	b.Logf("Slice push/pop x64: %.2f ns/op", perOp)
}

var sinkBytes []byte

func benchArray() Array[string, [16]string] {
	a, _ := From[string, [16]string](
		"label-0", "label-1", "label-2", "label-3",
		"label-4", "label-5", "label-6", "label-7",
	)
	return a
}

func BenchmarkMarshal_Json(b *testing.B) {
	a := benchArray()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sinkBytes, _ = json.Marshal(&a)
	}
	b.Logf("Json size: %d bytes", len(sinkBytes))
}

func BenchmarkMarshal_JsonIter(b *testing.B) {
	a := benchArray()
	var jsonIter = jsoniter.ConfigCompatibleWithStandardLibrary
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sinkBytes, _ = jsonIter.Marshal(&a)
	}
	b.Logf("JsonIter size: %d bytes", len(sinkBytes))
}

func BenchmarkMarshal_GoJson(b *testing.B) {
	a := benchArray()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sinkBytes, _ = goccyjson.Marshal(&a)
	}
	b.Logf("GoJson size: %d bytes", len(sinkBytes))
}

func BenchmarkMarshal_MsgPack(b *testing.B) {
	a := benchArray()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sinkBytes, _ = msgpack.Marshal(&a)
	}
	b.Logf("MsgPack size: %d bytes", len(sinkBytes))
}
