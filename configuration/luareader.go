// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"path/filepath"

	"github.com/yuin/gluamapper"
	lua "github.com/yuin/gopher-lua"

	"github.com/bitmark-inc/reviewd/fault"
)

// keys in the returned table are the gluamapper tags unchanged,
// e.g. data_directory, client_rpc
var mapper = gluamapper.Mapper{
	Option: gluamapper.Option{
		NameFunc: func(s string) string { return s },
		TagName:  "gluamapper",
	},
}

// ParseConfigurationFile - run a reviewd Lua configuration and copy the
// table it returns over the defaults already held in config
//
// fields absent from the table keep their defaults
func ParseConfigurationFile(fileName string, config interface{}) error {
	L := lua.NewState()
	defer L.Close()

	L.OpenLibs()

	// arg[0]: the file itself,  arg[1]: its directory
	arg := &lua.LTable{}
	arg.Insert(0, lua.LString(fileName))
	arg.Insert(1, lua.LString(filepath.Dir(fileName)))
	L.SetGlobal("arg", arg)

	if err := L.DoFile(fileName); nil != err {
		return err
	}

	table, ok := L.Get(L.GetTop()).(*lua.LTable)
	if !ok {
		return fault.ErrConfigurationNotTable
	}
	return mapper.Map(table, config)
}
