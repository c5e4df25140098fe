// Copyright (c) 2020 DDN. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// +build linux darwin solaris

package errtag_test

import (
	"testing"

	"github.com/pkg/errors"
	"golang.org/x/sys/unix"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/wastore/go-exattr/pkg/errtag"
)

func TestClassify(t *testing.T) {
	Convey("Classify() should map every code in the fixed table to its documented tag", t, func() {
		var tests = []struct {
			in  unix.Errno
			out errtag.Tag
		}{
			{in: unix.E2BIG, out: errtag.E2BIG},
			{in: unix.EACCES, out: errtag.EACCES},
			{in: unix.EINVAL, out: errtag.EINVAL},
			{in: unix.EIO, out: errtag.EIO},
			{in: unix.ENODATA, out: errtag.ENODATA},
			{in: unix.ENOENT, out: errtag.ENOENT},
			{in: unix.ENOMEM, out: errtag.ENOMEM},
			{in: unix.ENOSPC, out: errtag.ENOSPC},
			{in: unix.EPERM, out: errtag.EPERM},
			{in: unix.EROFS, out: errtag.EROFS},
			{in: unix.ENOTSUP, out: errtag.ENOTSUP},
		}

		for _, tc := range tests {
			cerr, ok := errtag.Classify(tc.in).(*errtag.Error)
			So(ok, ShouldBeTrue)
			So(cerr.Tag, ShouldEqual, tc.out)
		}
	})

	Convey("Classify() should find a code buried under wrapping", t, func() {
		err := errors.Wrap(unix.EACCES, "getxattr /etc/shadow user.test")
		tag, ok := errtag.TagOf(err)
		So(ok, ShouldBeTrue)
		So(tag, ShouldEqual, errtag.EACCES)
	})

	Convey("Classify() should fall back to a descriptive message for codes outside the table", t, func() {
		cerr, ok := errtag.Classify(unix.EBADF).(*errtag.Error)
		So(ok, ShouldBeTrue)
		So(cerr.Tag, ShouldEqual, errtag.Tag(""))
		So(cerr.Msg, ShouldEqual, unix.EBADF.Error())
	})

	Convey("Classify() should fall back to a descriptive message for non-code failures", t, func() {
		cerr, ok := errtag.Classify(errors.New("the disk caught fire")).(*errtag.Error)
		So(ok, ShouldBeTrue)
		So(cerr.Tag, ShouldEqual, errtag.Tag(""))
		So(cerr.Msg, ShouldEqual, "the disk caught fire")
	})

	Convey("a not-supported condition with no code should classify as enotsup", t, func() {
		tag, ok := errtag.TagOf(errtag.ErrNotSupported)
		So(ok, ShouldBeTrue)
		So(tag, ShouldEqual, errtag.ENOTSUP)

		tag, ok = errtag.TagOf(errors.Wrap(errtag.ErrNotSupported, "setxattr"))
		So(ok, ShouldBeTrue)
		So(tag, ShouldEqual, errtag.ENOTSUP)
	})

	Convey("Classify(nil) should be nil", t, func() {
		So(errtag.Classify(nil), ShouldBeNil)
	})

	Convey("an already classified failure should pass through unchanged", t, func() {
		orig := errtag.Message("failed to decode attribute name")
		So(errtag.Classify(orig), ShouldEqual, orig)
		So(errtag.Classify(errors.Wrap(orig, "listxattr")), ShouldEqual, orig)
	})
}

func TestError(t *testing.T) {
	Convey("a tagged Error should render as tag plus cause", t, func() {
		err := errtag.Classify(unix.ENOENT)
		So(err.Error(), ShouldEqual, "enoent: "+unix.ENOENT.Error())
	})

	Convey("Message() should render exactly the fixed message", t, func() {
		So(errtag.Message("failed to decode attribute name").Error(),
			ShouldEqual, "failed to decode attribute name")
	})

	Convey("NotSupported() should carry the enotsup tag and its cause", t, func() {
		cerr := errtag.NotSupported(errtag.ErrNotSupported)
		So(cerr.Tag, ShouldEqual, errtag.ENOTSUP)
		So(cerr.Err, ShouldEqual, errtag.ErrNotSupported)
	})
}
