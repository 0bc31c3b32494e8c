// Copyright ©2021 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xnu_test

import (
	"fmt"
	"log"

	"github.com/kortschak/fastaplus/xnu"
)

func ExampleFilter_Filter() {
	f, err := xnu.New(xnu.DefaultParams)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(f.Filter("ACDQACDQACDQACDQ"))
	// Output:
	//
	// XXXXXXXXXXXXXXXX
}
