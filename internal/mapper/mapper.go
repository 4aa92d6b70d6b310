package mapper

import (
	"github.com/hyemnyarwi-dev/hackathon-voting-system-public/internal/domain"
	"github.com/hyemnyarwi-dev/hackathon-voting-system-public/internal/dto"
	"github.com/hyemnyarwi-dev/hackathon-voting-system-public/internal/request"
)

// Team mappers
func MapDomainTeamToDTO(team *domain.Team) dto.TeamDTO {
	return dto.TeamDTO{
		ID:           team.ID,
		TeamNumber:   team.TeamNumber,
		TeamName:     team.TeamName,
		LeaderName:   team.LeaderName,
		Member2Name:  team.Member2Name,
		Member3Name:  team.Member3Name,
		Member4Name:  team.Member4Name,
		TotalMembers: team.TotalMembers,
		TeamGroup:    team.TeamGroup,
		CreatedAt:    team.CreatedAt,
	}
}

func MapDomainTeamsToDTO(teams []domain.Team) []dto.TeamDTO {
	result := make([]dto.TeamDTO, len(teams))
	for i, t := range teams {
		result[i] = MapDomainTeamToDTO(&t)
	}
	return result
}

func MapDomainTeamToAdminDTO(team *domain.Team) dto.AdminTeamDTO {
	return dto.AdminTeamDTO{
		TeamDTO:         MapDomainTeamToDTO(team),
		LeaderAuthCode:  team.LeaderAuthCode,
		Member2AuthCode: team.Member2AuthCode,
		Member3AuthCode: team.Member3AuthCode,
		Member4AuthCode: team.Member4AuthCode,
	}
}

func MapDomainTeamsToAdminDTO(teams []domain.Team) []dto.AdminTeamDTO {
	result := make([]dto.AdminTeamDTO, len(teams))
	for i, t := range teams {
		result[i] = MapDomainTeamToAdminDTO(&t)
	}
	return result
}

func MapSaveTeamsRequestToDomain(req *request.SaveTeamsRequest) []domain.RosterEntry {
	entries := make([]domain.RosterEntry, len(req.Teams))
	for i, t := range req.Teams {
		entries[i] = domain.RosterEntry{
			TeamNumber:   t.TeamNumber,
			TeamName:     t.TeamName,
			LeaderName:   t.LeaderName,
			Member2Name:  t.Member2Name,
			Member3Name:  t.Member3Name,
			Member4Name:  t.Member4Name,
			TotalMembers: t.TotalMembers,
			TeamGroup:    t.TeamGroup,
		}
	}
	return entries
}

// Voter mappers
func MapDomainVoterToDTO(voter *domain.Voter) dto.VoterDTO {
	return dto.VoterDTO{
		ID:                     voter.ID,
		LdapNickname:           voter.LdapNickname,
		TeamID:                 voter.TeamID,
		VoterGroup:             voter.VoterGroup,
		HasVotedIdea:           voter.HasVotedIdea,
		HasVotedImplementation: voter.HasVotedImplementation,
		CreatedAt:              voter.CreatedAt,
	}
}

func MapDomainVotersToDTO(voters []domain.Voter) []dto.VoterDTO {
	result := make([]dto.VoterDTO, len(voters))
	for i, v := range voters {
		result[i] = MapDomainVoterToDTO(&v)
	}
	return result
}

// Judge mappers
func MapDomainJudgeToDTO(judge *domain.Judge) dto.JudgeDTO {
	return dto.JudgeDTO{
		ID:                      judge.ID,
		Name:                    judge.Name,
		JudgeGroup:              judge.JudgeGroup,
		HasVotedIdea:            judge.HasVotedIdea,
		HasVotedImplementation:  judge.HasVotedImplementation,
		IdeaVotesUsed:           judge.IdeaVotesUsed,
		ImplementationVotesUsed: judge.ImplementationVotesUsed,
		CreatedAt:               judge.CreatedAt,
	}
}

func MapDomainJudgesToDTO(judges []domain.Judge) []dto.JudgeDTO {
	result := make([]dto.JudgeDTO, len(judges))
	for i, j := range judges {
		result[i] = MapDomainJudgeToDTO(&j)
	}
	return result
}

// Results mappers
func MapDomainResultToDTO(res *domain.TeamResult) dto.TeamResultDTO {
	return dto.TeamResultDTO{
		ID:                   res.ID,
		TeamNumber:           res.TeamNumber,
		TeamName:             res.TeamName,
		LeaderName:           res.LeaderName,
		TeamGroup:            res.TeamGroup,
		TotalMembers:         res.TotalMembers,
		IdeaVotes:            res.IdeaVotes,
		ImplementationVotes:  res.ImplementationVotes,
		IdeaVoters:           res.IdeaVoters,
		ImplementationVoters: res.ImplementationVoters,
		IdeaJudges:           res.IdeaJudges,
		ImplementationJudges: res.ImplementationJudges,
		TotalVotes:           res.IdeaVotes + res.ImplementationVotes,
	}
}

func MapDomainResultsToDTO(results []domain.TeamResult) []dto.TeamResultDTO {
	out := make([]dto.TeamResultDTO, len(results))
	for i, r := range results {
		out[i] = MapDomainResultToDTO(&r)
	}
	return out
}

func MapDomainRankingsToDTO(rankings []domain.GroupRanking) []dto.GroupRankingDTO {
	out := make([]dto.GroupRankingDTO, len(rankings))
	for i, r := range rankings {
		entries := make([]dto.RankingEntryDTO, len(r.Entries))
		for j, e := range r.Entries {
			entries[j] = dto.RankingEntryDTO{
				TeamName:   e.TeamName,
				TeamNumber: e.TeamNumber,
				Votes:      e.Votes,
			}
		}
		out[i] = dto.GroupRankingDTO{
			Group:    r.Group,
			Category: r.Category,
			Entries:  entries,
		}
	}
	return out
}
