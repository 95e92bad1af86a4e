package contract

import "forestlab/sdk"

// ProjectParams carries the metadata supplied at registration.
type ProjectParams struct {
	Name        string
	Symbol      string
	Description string
	Website     string
	ImageURI    string
	FundingGoal uint64
	Duration    int64
	ReceiptMint sdk.Mint
	ApyEstimate uint16
}

// validate checks presence and bounded lengths of the metadata fields.
func (p *ProjectParams) validate() error {
	if p.Name == "" {
		return ErrEmptyName
	}
	if p.Symbol == "" {
		return ErrEmptySymbol
	}
	if len(p.Name) > MaxNameLength ||
		len(p.Symbol) > MaxSymbolLength ||
		len(p.Description) > MaxDescriptionLength ||
		len(p.Website) > MaxURLLength ||
		len(p.ImageURI) > MaxImageURILength {
		return ErrTextTooLong
	}
	if p.FundingGoal == 0 {
		return ErrInvalidFundingGoal
	}
	if p.Duration <= 0 {
		return ErrInvalidDuration
	}
	return nil
}

// RegisterProject creates a project against an active platform and returns
// its fresh id. The creator starts as its own payout wallet with the default
// manager fee.
func (e *Engine) RegisterProject(caller sdk.Address, params ProjectParams) (uint64, error) {
	var id uint64
	err := e.run("register_project", func(s *stagedState) error {
		platform, err := requireActivePlatform(s)
		if err != nil {
			return err
		}
		if err := params.validate(); err != nil {
			return err
		}

		now := e.nowUnix()
		id = nextProjectID(s)
		project := &Project{
			Creator:         caller,
			Name:            params.Name,
			Symbol:          params.Symbol,
			Description:     params.Description,
			Website:         params.Website,
			ImageURI:        params.ImageURI,
			FundingGoal:     params.FundingGoal,
			FundsRaised:     0,
			SupportersCount: 0,
			ReceiptMint:     params.ReceiptMint,
			Status:          StatusActive,
			CreatedAt:       now,
			EndTime:         now + params.Duration,
			FundsClaimed:    false,
			ManagerFee:      DefaultManagerFeeBps,
			PayoutWallet:    caller,
			ApyEstimate:     params.ApyEstimate,
			TotalRewards:    0,
		}
		saveProject(s, id, project)
		if err := appendProjectIndex(s, id); err != nil {
			return err
		}

		platform.TotalProjects = satAdd(platform.TotalProjects, 1)
		savePlatform(s, platform)

		e.emitProjectRegistered(id, project)
		return nil
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

// UpdateProjectFee sets the manager fee and optionally the payout wallet.
// Creator only.
func (e *Engine) UpdateProjectFee(caller sdk.Address, projectID uint64, managerFee uint16, payoutWallet *sdk.Address) error {
	return e.run("update_project_fee", func(s *stagedState) error {
		project, err := requireProject(s, projectID)
		if err != nil {
			return err
		}
		if project.Creator != caller {
			return ErrUnauthorized
		}
		if managerFee > MaxManagerFeeBps {
			return ErrInvalidFeePercentage
		}

		project.ManagerFee = managerFee
		if payoutWallet != nil {
			project.PayoutWallet = *payoutWallet
		}
		saveProject(s, projectID, project)
		e.emitProjectSettingsUpdated(projectID, project, e.nowUnix())
		return nil
	})
}

// UpdateProjectStatus moves a project to any status. The enum is flat on
// purpose: every transition is legal for the creator, the platform authority
// and the admin wallet.
func (e *Engine) UpdateProjectStatus(caller sdk.Address, projectID uint64, newStatus ProjectStatus) error {
	return e.run("update_project_status", func(s *stagedState) error {
		platform, err := requirePlatform(s)
		if err != nil {
			return err
		}
		project, err := requireProject(s, projectID)
		if err != nil {
			return err
		}
		if project.Creator != caller && platform.Authority != caller && platform.AdminWallet != caller {
			return ErrUnauthorized
		}
		if !newStatus.valid() {
			return ErrInvalidStatus
		}

		previous := project.Status
		project.Status = newStatus
		saveProject(s, projectID, project)
		e.emitProjectStatusUpdated(projectID, previous, newStatus, caller, e.nowUnix())
		return nil
	})
}
