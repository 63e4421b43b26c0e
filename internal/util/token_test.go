package util

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/BUka228/ProgressQuestWeb/dao/model"
)

func TestTokenRoundTrip(t *testing.T) {
	tm := newTokenManager("test-secret", 1, 168)

	Convey("claims survive a create/check round trip", t, func() {
		msg := &JWTMessage{
			UserID:       "u-123",
			Username:     "alice",
			RolePlatform: model.RoleMember,
		}
		accessToken, refreshToken, err := tm.CreateTokens(msg)
		So(err, ShouldBeNil)
		So(accessToken, ShouldNotBeEmpty)
		So(refreshToken, ShouldNotBeEmpty)

		parsed, err := tm.CheckToken(accessToken)
		So(err, ShouldBeNil)
		So(parsed.UserID, ShouldEqual, "u-123")
		So(parsed.Username, ShouldEqual, "alice")
		So(parsed.RolePlatform, ShouldEqual, model.RoleMember)
	})

	Convey("a token signed with another secret is rejected", t, func() {
		other := newTokenManager("other-secret", 1, 168)
		accessToken, _, err := other.CreateTokens(&JWTMessage{UserID: "u-123"})
		So(err, ShouldBeNil)

		_, err = tm.CheckToken(accessToken)
		So(err, ShouldNotBeNil)
	})

	Convey("garbage is rejected", t, func() {
		_, err := tm.CheckToken("not-a-token")
		So(err, ShouldNotBeNil)
	})
}
