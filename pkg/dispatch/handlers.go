package dispatch

import (
	"github.com/arthur-debert/deeplink/pkg/deeplink"
	"github.com/arthur-debert/deeplink/pkg/errors"
	"github.com/arthur-debert/deeplink/pkg/registry"
)

// Handler plans the navigation for one action.
type Handler func(res deeplink.Result, profiles Profiles) (Navigation, error)

func defaultHandlers() registry.Registry[Handler] {
	reg := registry.New[Handler]("action handler")
	registry.MustRegister(reg, string(deeplink.ActionQuickTask), Handler(quickTask))
	registry.MustRegister(reg, string(deeplink.ActionLoadProfile), Handler(loadProfile))
	registry.MustRegister(reg, string(deeplink.ActionLoadProfileAndEstimate), Handler(loadProfileAndEstimate))
	registry.MustRegister(reg, string(deeplink.ActionLoadProfileAndVerify), Handler(loadProfileAndVerify))
	return reg
}

func quickTask(res deeplink.Result, _ Profiles) (Navigation, error) {
	return Navigation{
		Action: res.Action,
		View:   ViewSynchronize,
		Task:   TaskQuickSynchronize,
	}, nil
}

func loadProfile(res deeplink.Result, profiles Profiles) (Navigation, error) {
	profile, err := selectProfile(res, 1, profiles)
	if err != nil {
		return Navigation{}, err
	}
	return Navigation{Action: res.Action, Profile: profile}, nil
}

func loadProfileAndEstimate(res deeplink.Result, profiles Profiles) (Navigation, error) {
	profile, err := selectProfile(res, 1, profiles)
	if err != nil {
		return Navigation{}, err
	}
	return Navigation{
		Action:   res.Action,
		View:     ViewSynchronize,
		Profile:  profile,
		Estimate: true,
	}, nil
}

// loadProfileAndVerify expects the task id as the second parameter, whatever its name.
func loadProfileAndVerify(res deeplink.Result, profiles Profiles) (Navigation, error) {
	profile, err := selectProfile(res, 2, profiles)
	if err != nil {
		return Navigation{}, err
	}
	return Navigation{
		Action:  res.Action,
		View:    ViewVerifyRemote,
		Profile: profile,
		TaskID:  res.Params[1].ValueOr(""),
	}, nil
}

func selectProfile(res deeplink.Result, wantParams int, profiles Profiles) (string, error) {
	if len(res.Params) != wantParams {
		return "", errors.Newf(errors.ErrNoAction, "%s takes %d parameter(s), got %d",
			res.Action, wantParams, len(res.Params)).
			WithDetail("action", string(res.Action)).
			WithDetail("expected", wantParams).
			WithDetail("got", len(res.Params))
	}
	profile, _ := res.Profile()
	if err := profiles.Validate(profile); err != nil {
		return "", err
	}
	return profile, nil
}
