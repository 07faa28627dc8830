//go:build !(js && wasm)

package main

import "k8s.io/klog/v2"

func main() {
	klog.Exitf("ant-wasm must be built with GOOS=js GOARCH=wasm")
}
